package main

import "github.com/EtherSphere01/Hotel-Amin-International-sub001/commands"

func main() {
	commands.Execute()
}
