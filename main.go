package main

import cmd "github.com/ulfnlp/ulfdata/cmd/ulfdata"

func main() {
	cmd.Execute()
}
