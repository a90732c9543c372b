package main

import "github.com/imeis/lastfm/cmd"

func main() {
	cmd.Execute()
}
