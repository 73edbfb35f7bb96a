package main

import "os"

func main() {
	f, err := os.Open("main.go")
	if err != nil {
		return
	}
	f.Close()
}
