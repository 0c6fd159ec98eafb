package main

import "github.com/TonyBarratt100/test-data-gen-kit/cmd"

func main() {
	cmd.Execute()
}
