package main

import "strconv"

func main() {
	strconv.Atoi("42")
	undefinedFunction()
}
