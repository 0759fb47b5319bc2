package main

import "github.com/simhub/apiserver/cmd"

func main() {
	cmd.Execute()
}
