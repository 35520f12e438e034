// Command floorbot runs a floor-cleaning agent on a simulated tile floor.
package main

func main() {
	Execute()
}
