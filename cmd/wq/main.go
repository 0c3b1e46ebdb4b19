package main

import "wellquest/cmd/wq/root"

func main() {
	root.Execute()
}
