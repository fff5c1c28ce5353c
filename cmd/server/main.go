package main

import "perfscope/internal/app/server"

func main() {
	server.Run()
}
