package main

import "strconv"

func lookup(key string) (string, bool) {
	return key, key != ""
}

func main() {
	strconv.Atoi("42")
	lookup("key")
}
