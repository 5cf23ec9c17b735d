package main

import "github.com/nephrocare/dialyse_backend/cmd"

func main() {
	cmd.Execute()
}
