package main

import "github.com/frahmantamala/lead-tracker/cmd"

func main() {
	cmd.Execute()
}
