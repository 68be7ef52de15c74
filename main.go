package main

import "github.com/yeisme/repoview/cmd"

func main() {
	cmd.Execute()
}
