package main

import "github.com/oshokin/jnistage/cmd/jnistage/cmd"

func main() {
	cmd.Execute()
}
