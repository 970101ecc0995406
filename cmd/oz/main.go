package main

import "github.com/dingonewen/oystraz/cmd/oz/root"

func main() {
	root.Execute()
}
