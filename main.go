package main

import "chapterbook/cmd"

func main() {
	cmd.Execute()
}
