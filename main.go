package main

import "country-currency/cmd"

func main() {
	cmd.Execute()
}
