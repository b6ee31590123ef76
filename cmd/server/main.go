package main

import "github.com/nguyenhuutu2898/admin-console-pro/cmd/server/cmd"

func main() {
	cmd.Execute()
}
