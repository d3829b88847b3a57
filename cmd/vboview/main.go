// Command vboview renders scenes of VBOs to PNG images,
// PDF documents or a textual dump of the draw operations.
package main

func main() {
	Execute()
}
