package main

import "github.com/tinymachines/wopr/cmd"

func main() {
	cmd.Execute()
}
