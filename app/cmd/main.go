package main

import (
	"os"

	"github.com/noteme-app/noteme/app/cmd/site"
)

func ListCommands() {
	println("NoteMe Commands")
	println("\tsite\t\t\t- Static site commands")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		ListCommands()
		return
	}
	switch os.Args[1] {
	case "site":
		site.Run(os.Args[2:])
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}
