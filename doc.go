// Package glassocr is a small, fully inspectable handwritten-digit
// classifier: one convolution layer, max pooling, one dense layer and
// softmax, driven by pre-trained weights stored as plain text.
//
// 🚀 What is in the box?
//
//	• Dense float32 matrices with checked access and deterministic kernels
//	• Convolution, pooling, ReLU and softmax operators
//	• A weight-directory loader with a fixed, documented file layout
//	• A stateless inference pipeline with optional per-filter fan-out
//	• A brush canvas and image import/export for building inputs
//	• The glassocr command: infer, watch and shapes
//
// Everything is organized under these subpackages:
//
//	matrix/   Dense type, Add/Mul/Scale, element-wise ops, text I/O
//	cnn/      Convolve, MaxPool, BiasReLU, Concat, Affine, Softmax, stages
//	weights/  Config geometry, Load/Save of weight directories
//	pipeline/ Pipeline.Infer: image + weights → probabilities, best class
//	canvas/   brush painting, snapshots, image ↔ matrix conversion
//	cmd/glassocr/ command line front end
//
// Data flow:
//
//	28×28 ──conv 3×3 (×8)──▶ 26×26 ──ReLU, pool 2──▶ 13×13 (×8)
//	      ──concat──▶ 1352×1 ──W·x+b──▶ 10×1 ──softmax──▶ probabilities
//
//	go install github.com/katalvlaran/glassocr/cmd/glassocr@latest
package glassocr
