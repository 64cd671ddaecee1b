package main

// The library carries all of the functionality, cf. the root package.
func main() {}
