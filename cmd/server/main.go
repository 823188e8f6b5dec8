package main

import "nippo/internal/app/server"

func main() {
	server.Run()
}
