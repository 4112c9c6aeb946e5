package main

import "portfolioadmin/cmd"

func main() {
	cmd.Execute()
}
