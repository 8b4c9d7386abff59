package hw

// Cycles taken by each opcode. For conditional branches this is the cost when
// the branch is taken, 2 cycles are given back otherwise.
var cycleTable = [256]uint8{
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 4, 6, 8, // 0x
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 6, 5, 2, 2, 4, 6, // 1x
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 4, 7, 4, // 2x
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 6, 5, 2, 2, 3, 8, // 3x
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 4, 6, 6, // 4x
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 4, 5, 2, 2, 4, 3, // 5x
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 4, 7, 5, // 6x
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 3, 6, // 7x
	2, 8, 4, 7, 3, 4, 3, 6, 2, 6, 5, 4, 5, 2, 4, 5, // 8x
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 12, 5, // 9x
	3, 8, 4, 7, 3, 4, 3, 6, 2, 6, 4, 4, 5, 2, 4, 4, // Ax
	4, 8, 4, 7, 4, 5, 5, 6, 5, 5, 5, 5, 2, 2, 3, 4, // Bx
	3, 8, 4, 7, 4, 5, 4, 7, 2, 5, 6, 4, 5, 2, 4, 9, // Cx
	4, 8, 4, 7, 5, 6, 6, 7, 4, 5, 5, 5, 2, 2, 8, 3, // Dx
	2, 8, 4, 7, 3, 4, 3, 6, 2, 4, 5, 3, 4, 3, 4, 0, // Ex
	4, 8, 4, 7, 4, 5, 5, 6, 3, 4, 5, 4, 2, 2, 6, 0, // Fx
}
