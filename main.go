package main

import "github.com/qrave1/RoomChat/cmd"

func main() {
	cmd.Execute()
}
