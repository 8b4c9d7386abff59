package hw

import "spcplay/hw/hwio"

// spc700 opcodes table
var ops = [256]func(*CPU){
	NOP, TCALL0, SET1dp0, BBSdp0, ORdp, ORabs, ORindx, ORdpxind, ORimm, ORdpdp, OR1, ASLdp, ASLabs, PUSHPSW, TSET1, BRK,
	BPL, TCALL1, CLR1dp0, BBCdp0, ORdpx, ORabsx, ORabsy, ORdpindy, ORdpimm, ORindxy, DECW, ASLdpx, ASLA, DECX, CMPXabs, JMPabsxind,
	CLRP, TCALL2, SET1dp1, BBSdp1, ANDdp, ANDabs, ANDindx, ANDdpxind, ANDimm, ANDdpdp, OR1not, ROLdp, ROLabs, PUSHA, CBNEdp, BRA,
	BMI, TCALL3, CLR1dp1, BBCdp1, ANDdpx, ANDabsx, ANDabsy, ANDdpindy, ANDdpimm, ANDindxy, INCW, ROLdpx, ROLA, INCX, CMPXdp, CALL,
	SETP, TCALL4, SET1dp2, BBSdp2, EORdp, EORabs, EORindx, EORdpxind, EORimm, EORdpdp, AND1, LSRdp, LSRabs, PUSHX, TCLR1, PCALL,
	BVC, TCALL5, CLR1dp2, BBCdp2, EORdpx, EORabsx, EORabsy, EORdpindy, EORdpimm, EORindxy, CMPW, LSRdpx, LSRA, MOVXA, CMPYabs, JMPabs,
	CLRC, TCALL6, SET1dp3, BBSdp3, CMPdp, CMPabs, CMPindx, CMPdpxind, CMPimm, CMPdpdp, AND1not, RORdp, RORabs, PUSHY, DBNZdp, RET,
	BVS, TCALL7, CLR1dp3, BBCdp3, CMPdpx, CMPabsx, CMPabsy, CMPdpindy, CMPdpimm, CMPindxy, ADDW, RORdpx, RORA, MOVAX, CMPYdp, RETI,
	SETC, TCALL8, SET1dp4, BBSdp4, ADCdp, ADCabs, ADCindx, ADCdpxind, ADCimm, ADCdpdp, EOR1, DECdp, DECabs, MOVYimm, POPPSW, MOVdpimm,
	BCC, TCALL9, CLR1dp4, BBCdp4, ADCdpx, ADCabsx, ADCabsy, ADCdpindy, ADCdpimm, ADCindxy, SUBW, DECdpx, DECA, MOVXSP, DIV, XCN,
	EI, TCALL10, SET1dp5, BBSdp5, SBCdp, SBCabs, SBCindx, SBCdpxind, SBCimm, SBCdpdp, MOV1Cbit, INCdp, INCabs, CMPYimm, POPA, MOVindxincA,
	BCS, TCALL11, CLR1dp5, BBCdp5, SBCdpx, SBCabsx, SBCabsy, SBCdpindy, SBCdpimm, SBCindxy, MOVWYAdp, INCdpx, INCA, MOVSPX, DAS, MOVAindxinc,
	DI, TCALL12, SET1dp6, BBSdp6, MOVdpA, MOVabsA, MOVindxA, MOVdpxindA, CMPXimm, MOVabsX, MOV1bitC, MOVdpY, MOVabsY, MOVXimm, POPX, MUL,
	BNE, TCALL13, CLR1dp6, BBCdp6, MOVdpxA, MOVabsxA, MOVabsyA, MOVdpindyA, MOVdpX, MOVdpyX, MOVWdpYA, MOVdpxY, DECY, MOVAY, CBNEdpx, DAA,
	CLRV, TCALL14, SET1dp7, BBSdp7, MOVAdp, MOVAabs, MOVAindx, MOVAdpxind, MOVAimm, MOVXabs, NOT1, MOVYdp, MOVYabs, NOTC, POPY, SLEEP,
	BEQ, TCALL15, CLR1dp7, BBCdp7, MOVAdpx, MOVAabsx, MOVAabsy, MOVAdpindy, MOVXdp, MOVXdpy, MOVdpdp, MOVYdpx, INCY, MOVYA, DBNZY, STOP,
}

// Control flow

// 00
func NOP(c *CPU) { c.PC-- }

// n1
func (c *CPU) tcall(n uint16) {
	c.PC--
	c.push16(c.PC)
	c.PC = c.read16(TCALLVector - 2*n)
}

func TCALL0(c *CPU) { c.tcall(0) }
func TCALL1(c *CPU) { c.tcall(1) }
func TCALL2(c *CPU) { c.tcall(2) }
func TCALL3(c *CPU) { c.tcall(3) }
func TCALL4(c *CPU) { c.tcall(4) }
func TCALL5(c *CPU) { c.tcall(5) }
func TCALL6(c *CPU) { c.tcall(6) }
func TCALL7(c *CPU) { c.tcall(7) }
func TCALL8(c *CPU) { c.tcall(8) }
func TCALL9(c *CPU) { c.tcall(9) }
func TCALL10(c *CPU) { c.tcall(10) }
func TCALL11(c *CPU) { c.tcall(11) }
func TCALL12(c *CPU) { c.tcall(12) }
func TCALL13(c *CPU) { c.tcall(13) }
func TCALL14(c *CPU) { c.tcall(14) }
func TCALL15(c *CPU) { c.tcall(15) }

// 0F
func BRK(c *CPU) {
	c.PC--
	c.push16(c.PC)
	c.push8(uint8(c.Pack()))
	c.bi |= Break
	c.bi &^= Interrupt
	c.PC = c.read16(BRKVector)
}

// 10
func BPL(c *CPU) { c.branch(!c.IsNegative(), c.data) }

// 1F
func JMPabsxind(c *CPU) { c.PC = c.read16(c.modeAbsX()) }

// 2E
func CBNEdp(c *CPU) {
	v := c.read8(c.modeDP())
	c.branch(v != c.A, c.fetch())
}

// 2F
func BRA(c *CPU) { c.PC += uint16(int8(c.data)) }

// 30
func BMI(c *CPU) { c.branch(c.IsNegative(), c.data) }

// 3F
func CALL(c *CPU) {
	dst := c.modeAbs()
	c.push16(c.PC)
	c.PC = dst
}

// 4F
func PCALL(c *CPU) {
	c.push16(c.PC)
	c.PC = 0xFF00 | uint16(c.data)
}

// 50
func BVC(c *CPU) { c.branch(!c.overflow, c.data) }

// 5F
func JMPabs(c *CPU) { c.PC = c.modeAbs() }

// 6E
func DBNZdp(c *CPU) {
	addr := c.modeDP()
	v := c.read8(addr) - 1
	c.write8(addr, v)
	c.branch(v != 0, c.fetch())
}

// 6F
func RET(c *CPU) { c.PC = c.pop16() }

// 70
func BVS(c *CPU) { c.branch(c.overflow, c.data) }

// 7F
func RETI(c *CPU) {
	c.Unpack(PSW(c.pop8()))
	c.PC = c.pop16()
}

// 90
func BCC(c *CPU) { c.branch(!c.carry, c.data) }

// B0
func BCS(c *CPU) { c.branch(c.carry, c.data) }

// D0
func BNE(c *CPU) { c.branch(!c.IsZero(), c.data) }

// DE
func CBNEdpx(c *CPU) {
	v := c.read8(c.modeDPX())
	c.branch(v != c.A, c.fetch())
}

// EF
func SLEEP(c *CPU) {
	c.PC--
	c.halt()
}

// F0
func BEQ(c *CPU) { c.branch(c.IsZero(), c.data) }

// FE
func DBNZY(c *CPU) {
	c.Y--
	c.branch(c.Y != 0, c.data)
}

// FF
func STOP(c *CPU) {
	c.PC--
	c.halt()
}

// Direct page bit operations

func (c *CPU) set1(bit uint) {
	addr := c.modeDP()
	v := c.read8(addr)
	hwio.SetBit8(&v, bit)
	c.write8(addr, v)
}

func (c *CPU) clr1(bit uint) {
	addr := c.modeDP()
	v := c.read8(addr)
	hwio.ClearBit8(&v, bit)
	c.write8(addr, v)
}

func (c *CPU) bbs(bit uint) {
	v := c.read8(c.modeDP())
	c.branch(hwio.GetBit8(v, bit), c.fetch())
}

func (c *CPU) bbc(bit uint) {
	v := c.read8(c.modeDP())
	c.branch(!hwio.GetBit8(v, bit), c.fetch())
}

func SET1dp0(c *CPU) { c.set1(0) }
func SET1dp1(c *CPU) { c.set1(1) }
func SET1dp2(c *CPU) { c.set1(2) }
func SET1dp3(c *CPU) { c.set1(3) }
func SET1dp4(c *CPU) { c.set1(4) }
func SET1dp5(c *CPU) { c.set1(5) }
func SET1dp6(c *CPU) { c.set1(6) }
func SET1dp7(c *CPU) { c.set1(7) }

func CLR1dp0(c *CPU) { c.clr1(0) }
func CLR1dp1(c *CPU) { c.clr1(1) }
func CLR1dp2(c *CPU) { c.clr1(2) }
func CLR1dp3(c *CPU) { c.clr1(3) }
func CLR1dp4(c *CPU) { c.clr1(4) }
func CLR1dp5(c *CPU) { c.clr1(5) }
func CLR1dp6(c *CPU) { c.clr1(6) }
func CLR1dp7(c *CPU) { c.clr1(7) }

func BBSdp0(c *CPU) { c.bbs(0) }
func BBSdp1(c *CPU) { c.bbs(1) }
func BBSdp2(c *CPU) { c.bbs(2) }
func BBSdp3(c *CPU) { c.bbs(3) }
func BBSdp4(c *CPU) { c.bbs(4) }
func BBSdp5(c *CPU) { c.bbs(5) }
func BBSdp6(c *CPU) { c.bbs(6) }
func BBSdp7(c *CPU) { c.bbs(7) }

func BBCdp0(c *CPU) { c.bbc(0) }
func BBCdp1(c *CPU) { c.bbc(1) }
func BBCdp2(c *CPU) { c.bbc(2) }
func BBCdp3(c *CPU) { c.bbc(3) }
func BBCdp4(c *CPU) { c.bbc(4) }
func BBCdp5(c *CPU) { c.bbc(5) }
func BBCdp6(c *CPU) { c.bbc(6) }
func BBCdp7(c *CPU) { c.bbc(7) }

// Absolute bit operations

// 0E
func TSET1(c *CPU) {
	addr := c.modeAbs()
	v := c.read8(addr)
	c.nz = c.A - v
	c.write8(addr, v|c.A)
}

// 4E
func TCLR1(c *CPU) {
	addr := c.modeAbs()
	v := c.read8(addr)
	c.nz = c.A - v
	c.write8(addr, v&^c.A)
}

// 0A
func OR1(c *CPU) { c.carry = c.memBit() || c.carry }

// 2A
func OR1not(c *CPU) { c.carry = !c.memBit() || c.carry }

// 4A
func AND1(c *CPU) { c.carry = c.memBit() && c.carry }

// 6A
func AND1not(c *CPU) { c.carry = !c.memBit() && c.carry }

// 8A
func EOR1(c *CPU) { c.carry = c.memBit() != c.carry }

// AA
func MOV1Cbit(c *CPU) { c.carry = c.memBit() }

// CA
func MOV1bitC(c *CPU) {
	addr, bit := c.modeMemBit()
	v := c.read8(addr)
	hwio.WriteBit8(&v, bit, c.carry)
	c.write8(addr, v)
}

// EA
func NOT1(c *CPU) {
	addr, bit := c.modeMemBit()
	v := c.read8(addr)
	hwio.WriteBit8(&v, bit, !hwio.GetBit8(v, bit))
	c.write8(addr, v)
}

// OR

func ORdp(c *CPU) { c.A = c.or(c.A, c.read8(c.modeDP())) }
func ORabs(c *CPU) { c.A = c.or(c.A, c.read8(c.modeAbs())) }
func ORindx(c *CPU) { c.A = c.or(c.A, c.read8(c.modeIndX())) }
func ORdpxind(c *CPU) { c.A = c.or(c.A, c.read8(c.modeDPXInd())) }
func ORimm(c *CPU) { c.A = c.or(c.A, c.data) }
func ORdpdp(c *CPU) { c.aluDPDP(c.or, true) }
func ORdpx(c *CPU) { c.A = c.or(c.A, c.read8(c.modeDPX())) }
func ORabsx(c *CPU) { c.A = c.or(c.A, c.read8(c.modeAbsX())) }
func ORabsy(c *CPU) { c.A = c.or(c.A, c.read8(c.modeAbsY())) }
func ORdpindy(c *CPU) { c.A = c.or(c.A, c.read8(c.modeDPIndY())) }
func ORdpimm(c *CPU) { c.aluDPImm(c.or, true) }
func ORindxy(c *CPU) { c.aluIndXY(c.or, true) }

// AND

func ANDdp(c *CPU) { c.A = c.and(c.A, c.read8(c.modeDP())) }
func ANDabs(c *CPU) { c.A = c.and(c.A, c.read8(c.modeAbs())) }
func ANDindx(c *CPU) { c.A = c.and(c.A, c.read8(c.modeIndX())) }
func ANDdpxind(c *CPU) { c.A = c.and(c.A, c.read8(c.modeDPXInd())) }
func ANDimm(c *CPU) { c.A = c.and(c.A, c.data) }
func ANDdpdp(c *CPU) { c.aluDPDP(c.and, true) }
func ANDdpx(c *CPU) { c.A = c.and(c.A, c.read8(c.modeDPX())) }
func ANDabsx(c *CPU) { c.A = c.and(c.A, c.read8(c.modeAbsX())) }
func ANDabsy(c *CPU) { c.A = c.and(c.A, c.read8(c.modeAbsY())) }
func ANDdpindy(c *CPU) { c.A = c.and(c.A, c.read8(c.modeDPIndY())) }
func ANDdpimm(c *CPU) { c.aluDPImm(c.and, true) }
func ANDindxy(c *CPU) { c.aluIndXY(c.and, true) }

// EOR

func EORdp(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeDP())) }
func EORabs(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeAbs())) }
func EORindx(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeIndX())) }
func EORdpxind(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeDPXInd())) }
func EORimm(c *CPU) { c.A = c.eor(c.A, c.data) }
func EORdpdp(c *CPU) { c.aluDPDP(c.eor, true) }
func EORdpx(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeDPX())) }
func EORabsx(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeAbsX())) }
func EORabsy(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeAbsY())) }
func EORdpindy(c *CPU) { c.A = c.eor(c.A, c.read8(c.modeDPIndY())) }
func EORdpimm(c *CPU) { c.aluDPImm(c.eor, true) }
func EORindxy(c *CPU) { c.aluIndXY(c.eor, true) }

// CMP

func CMPdp(c *CPU) { c.cmp(c.A, c.read8(c.modeDP())) }
func CMPabs(c *CPU) { c.cmp(c.A, c.read8(c.modeAbs())) }
func CMPindx(c *CPU) { c.cmp(c.A, c.read8(c.modeIndX())) }
func CMPdpxind(c *CPU) { c.cmp(c.A, c.read8(c.modeDPXInd())) }
func CMPimm(c *CPU) { c.cmp(c.A, c.data) }
func CMPdpdp(c *CPU) { c.aluDPDP(c.cmp, false) }
func CMPdpx(c *CPU) { c.cmp(c.A, c.read8(c.modeDPX())) }
func CMPabsx(c *CPU) { c.cmp(c.A, c.read8(c.modeAbsX())) }
func CMPabsy(c *CPU) { c.cmp(c.A, c.read8(c.modeAbsY())) }
func CMPdpindy(c *CPU) { c.cmp(c.A, c.read8(c.modeDPIndY())) }
func CMPdpimm(c *CPU) { c.aluDPImm(c.cmp, false) }
func CMPindxy(c *CPU) { c.aluIndXY(c.cmp, false) }

func CMPXabs(c *CPU) { c.cmp(c.X, c.read8(c.modeAbs())) }
func CMPXdp(c *CPU) { c.cmp(c.X, c.read8(c.modeDP())) }
func CMPXimm(c *CPU) { c.cmp(c.X, c.data) }
func CMPYabs(c *CPU) { c.cmp(c.Y, c.read8(c.modeAbs())) }
func CMPYdp(c *CPU) { c.cmp(c.Y, c.read8(c.modeDP())) }
func CMPYimm(c *CPU) { c.cmp(c.Y, c.data) }

// ADC

func ADCdp(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeDP())) }
func ADCabs(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeAbs())) }
func ADCindx(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeIndX())) }
func ADCdpxind(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeDPXInd())) }
func ADCimm(c *CPU) { c.A = c.adc(c.A, c.data) }
func ADCdpdp(c *CPU) { c.aluDPDP(c.adc, true) }
func ADCdpx(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeDPX())) }
func ADCabsx(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeAbsX())) }
func ADCabsy(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeAbsY())) }
func ADCdpindy(c *CPU) { c.A = c.adc(c.A, c.read8(c.modeDPIndY())) }
func ADCdpimm(c *CPU) { c.aluDPImm(c.adc, true) }
func ADCindxy(c *CPU) { c.aluIndXY(c.adc, true) }

// SBC

func SBCdp(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeDP())) }
func SBCabs(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeAbs())) }
func SBCindx(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeIndX())) }
func SBCdpxind(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeDPXInd())) }
func SBCimm(c *CPU) { c.A = c.sbc(c.A, c.data) }
func SBCdpdp(c *CPU) { c.aluDPDP(c.sbc, true) }
func SBCdpx(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeDPX())) }
func SBCabsx(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeAbsX())) }
func SBCabsy(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeAbsY())) }
func SBCdpindy(c *CPU) { c.A = c.sbc(c.A, c.read8(c.modeDPIndY())) }
func SBCdpimm(c *CPU) { c.aluDPImm(c.sbc, true) }
func SBCindxy(c *CPU) { c.aluIndXY(c.sbc, true) }

// Shifts, rotations, increments and decrements

func ASLdp(c *CPU) { c.rmw(c.modeDP(), c.asl) }
func ASLabs(c *CPU) { c.rmw(c.modeAbs(), c.asl) }
func ASLdpx(c *CPU) { c.rmw(c.modeDPX(), c.asl) }
func ROLdp(c *CPU) { c.rmw(c.modeDP(), c.rol) }
func ROLabs(c *CPU) { c.rmw(c.modeAbs(), c.rol) }
func ROLdpx(c *CPU) { c.rmw(c.modeDPX(), c.rol) }
func LSRdp(c *CPU) { c.rmw(c.modeDP(), c.lsr) }
func LSRabs(c *CPU) { c.rmw(c.modeAbs(), c.lsr) }
func LSRdpx(c *CPU) { c.rmw(c.modeDPX(), c.lsr) }
func RORdp(c *CPU) { c.rmw(c.modeDP(), c.ror) }
func RORabs(c *CPU) { c.rmw(c.modeAbs(), c.ror) }
func RORdpx(c *CPU) { c.rmw(c.modeDPX(), c.ror) }
func DECdp(c *CPU) { c.rmw(c.modeDP(), c.dec) }
func DECabs(c *CPU) { c.rmw(c.modeAbs(), c.dec) }
func DECdpx(c *CPU) { c.rmw(c.modeDPX(), c.dec) }
func INCdp(c *CPU) { c.rmw(c.modeDP(), c.inc) }
func INCabs(c *CPU) { c.rmw(c.modeAbs(), c.inc) }
func INCdpx(c *CPU) { c.rmw(c.modeDPX(), c.inc) }

func ASLA(c *CPU) {
	c.PC--
	c.A = c.asl(c.A)
}

func ROLA(c *CPU) {
	c.PC--
	c.A = c.rol(c.A)
}

func LSRA(c *CPU) {
	c.PC--
	c.A = c.lsr(c.A)
}

func RORA(c *CPU) {
	c.PC--
	c.A = c.ror(c.A)
}

func DECA(c *CPU) {
	c.PC--
	c.A = c.dec(c.A)
}

func INCA(c *CPU) {
	c.PC--
	c.A = c.inc(c.A)
}

func DECX(c *CPU) {
	c.PC--
	c.X = c.dec(c.X)
}

func INCX(c *CPU) {
	c.PC--
	c.X = c.inc(c.X)
}

func DECY(c *CPU) {
	c.PC--
	c.Y = c.dec(c.Y)
}

func INCY(c *CPU) {
	c.PC--
	c.Y = c.inc(c.Y)
}

// 9F
func XCN(c *CPU) {
	c.PC--
	c.A = c.A>>4 | c.A<<4
	c.nz = c.A
}

// 16-bit operations

// 1A
func DECW(c *CPU) {
	w := c.dpWord(c.data) - 1
	c.writeDPWord(c.data, w)
	c.setNZ16(w)
}

// 3A
func INCW(c *CPU) {
	w := c.dpWord(c.data) + 1
	c.writeDPWord(c.data, w)
	c.setNZ16(w)
}

// 5A
func CMPW(c *CPU) {
	d := int32(c.YA()) - int32(c.dpWord(c.data))
	c.carry = d >= 0
	c.setNZ16(uint16(d))
}

// 7A
func ADDW(c *CPU) {
	ya, w := c.YA(), c.dpWord(c.data)
	sum := uint32(ya) + uint32(w)
	c.half = (ya^w^uint16(sum))&0x1000 != 0
	c.carry = sum > 0xFFFF
	c.setYA(uint16(sum))
	c.setNZ16(uint16(sum))
}

// 9A
func SUBW(c *CPU) {
	ya, w := c.YA(), c.dpWord(c.data)
	d := int32(ya) - int32(w)
	c.half = (ya^w^uint16(d))&0x1000 == 0
	c.carry = d >= 0
	c.setYA(uint16(d))
	c.setNZ16(uint16(d))
}

// BA
func MOVWYAdp(c *CPU) {
	w := c.dpWord(c.data)
	c.setYA(w)
	c.setNZ16(w)
}

// DA
func MOVWdpYA(c *CPU) { c.writeDPWord(c.data, c.YA()) }

// CF
func MUL(c *CPU) {
	c.PC--
	c.setYA(uint16(c.Y) * uint16(c.A))
	c.nz = c.Y
}

// 9E
func DIV(c *CPU) {
	c.PC--
	ya := uint32(c.YA())
	x := uint32(c.X)
	y := uint32(c.Y)

	c.overflow = y >= x
	c.half = y&0x0F >= x&0x0F
	if y < x<<1 {
		c.A = uint8(ya / x)
		c.Y = uint8(ya % x)
	} else {
		c.A = uint8(255 - (ya-x<<9)/(256-x))
		c.Y = uint8(x + (ya-x<<9)%(256-x))
	}
	c.nz = c.A
}

// DF
func DAA(c *CPU) {
	c.PC--
	if c.carry || c.A > 0x99 {
		c.A += 0x60
		c.carry = true
	}
	if c.half || c.A&0x0F > 0x09 {
		c.A += 0x06
	}
	c.nz = c.A
}

// BE
func DAS(c *CPU) {
	c.PC--
	if !c.carry || c.A > 0x99 {
		c.A -= 0x60
		c.carry = false
	}
	if !c.half || c.A&0x0F > 0x09 {
		c.A -= 0x06
	}
	c.nz = c.A
}

// Loads

func MOVAdp(c *CPU) {
	c.A = c.read8(c.modeDP())
	c.nz = c.A
}

func MOVAabs(c *CPU) {
	c.A = c.read8(c.modeAbs())
	c.nz = c.A
}

func MOVAindx(c *CPU) {
	c.A = c.read8(c.modeIndX())
	c.nz = c.A
}

func MOVAdpxind(c *CPU) {
	c.A = c.read8(c.modeDPXInd())
	c.nz = c.A
}

func MOVAimm(c *CPU) {
	c.A = c.data
	c.nz = c.A
}

func MOVAdpx(c *CPU) {
	c.A = c.read8(c.modeDPX())
	c.nz = c.A
}

func MOVAabsx(c *CPU) {
	c.A = c.read8(c.modeAbsX())
	c.nz = c.A
}

func MOVAabsy(c *CPU) {
	c.A = c.read8(c.modeAbsY())
	c.nz = c.A
}

func MOVAdpindy(c *CPU) {
	c.A = c.read8(c.modeDPIndY())
	c.nz = c.A
}

func MOVXabs(c *CPU) {
	c.X = c.read8(c.modeAbs())
	c.nz = c.X
}

func MOVXdp(c *CPU) {
	c.X = c.read8(c.modeDP())
	c.nz = c.X
}

func MOVXdpy(c *CPU) {
	c.X = c.read8(c.modeDPY())
	c.nz = c.X
}

func MOVXimm(c *CPU) {
	c.X = c.data
	c.nz = c.X
}

func MOVYabs(c *CPU) {
	c.Y = c.read8(c.modeAbs())
	c.nz = c.Y
}

func MOVYdp(c *CPU) {
	c.Y = c.read8(c.modeDP())
	c.nz = c.Y
}

func MOVYdpx(c *CPU) {
	c.Y = c.read8(c.modeDPX())
	c.nz = c.Y
}

func MOVYimm(c *CPU) {
	c.Y = c.data
	c.nz = c.Y
}

// BF
func MOVAindxinc(c *CPU) {
	c.A = c.read8(c.modeIndX())
	c.X++
	c.nz = c.A
}

// Stores

func MOVdpA(c *CPU) { c.write8(c.modeDP(), c.A) }
func MOVabsA(c *CPU) { c.write8(c.modeAbs(), c.A) }
func MOVindxA(c *CPU) { c.write8(c.modeIndX(), c.A) }
func MOVdpxindA(c *CPU) { c.write8(c.modeDPXInd(), c.A) }
func MOVdpxA(c *CPU) { c.write8(c.modeDPX(), c.A) }
func MOVabsxA(c *CPU) { c.write8(c.modeAbsX(), c.A) }
func MOVabsyA(c *CPU) { c.write8(c.modeAbsY(), c.A) }
func MOVdpindyA(c *CPU) { c.write8(c.modeDPIndY(), c.A) }
func MOVdpX(c *CPU) { c.write8(c.modeDP(), c.X) }
func MOVdpyX(c *CPU) { c.write8(c.modeDPY(), c.X) }
func MOVabsX(c *CPU) { c.write8(c.modeAbs(), c.X) }
func MOVdpY(c *CPU) { c.write8(c.modeDP(), c.Y) }
func MOVdpxY(c *CPU) { c.write8(c.modeDPX(), c.Y) }
func MOVabsY(c *CPU) { c.write8(c.modeAbs(), c.Y) }

// AF
func MOVindxincA(c *CPU) {
	c.write8(c.modeIndX(), c.A)
	c.X++
}

// 8F
func MOVdpimm(c *CPU) { c.write8(c.dpAddr(c.fetch()), c.data) }

// FA
func MOVdpdp(c *CPU) {
	v := c.read8(c.dpAddr(c.data))
	c.write8(c.dpAddr(c.fetch()), v)
}

// Register transfers

func MOVXA(c *CPU) {
	c.PC--
	c.X = c.A
	c.nz = c.X
}

func MOVAX(c *CPU) {
	c.PC--
	c.A = c.X
	c.nz = c.A
}

func MOVAY(c *CPU) {
	c.PC--
	c.A = c.Y
	c.nz = c.A
}

func MOVYA(c *CPU) {
	c.PC--
	c.Y = c.A
	c.nz = c.Y
}

func MOVXSP(c *CPU) {
	c.PC--
	c.X = c.SP
	c.nz = c.X
}

func MOVSPX(c *CPU) {
	c.PC--
	c.SP = c.X
}

// Stack

func PUSHA(c *CPU) {
	c.PC--
	c.push8(c.A)
}

func PUSHX(c *CPU) {
	c.PC--
	c.push8(c.X)
}

func PUSHY(c *CPU) {
	c.PC--
	c.push8(c.Y)
}

func PUSHPSW(c *CPU) {
	c.PC--
	c.push8(uint8(c.Pack()))
}

func POPA(c *CPU) {
	c.PC--
	c.A = c.pop8()
}

func POPX(c *CPU) {
	c.PC--
	c.X = c.pop8()
}

func POPY(c *CPU) {
	c.PC--
	c.Y = c.pop8()
}

func POPPSW(c *CPU) {
	c.PC--
	c.Unpack(PSW(c.pop8()))
}

// Flags

func CLRC(c *CPU) {
	c.PC--
	c.carry = false
}

func SETC(c *CPU) {
	c.PC--
	c.carry = true
}

func NOTC(c *CPU) {
	c.PC--
	c.carry = !c.carry
}

func CLRV(c *CPU) {
	c.PC--
	c.overflow, c.half = false, false
}

func CLRP(c *CPU) {
	c.PC--
	c.dp = 0
}

func SETP(c *CPU) {
	c.PC--
	c.dp = 0x100
}

func EI(c *CPU) {
	c.PC--
	c.bi |= Interrupt
}

func DI(c *CPU) {
	c.PC--
	c.bi &^= Interrupt
}

