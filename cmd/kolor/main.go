// Command kolor parses, converts and manipulates colors from the command line.
//
// Usage:
//
//	kolor parse "hsl(120, 100%, 25%)" rebeccapurple
//	kolor convert "#ff8800" --to hsl
//	kolor mix red blue --weight 0.25
//	kolor adjust teal --spin 30 --lighten 0.1
//	kolor contrast white "#777"
//	kolor random --size 5 --css
//	kolor names
package main

func main() {
	Execute()
}
