package pagesizes

// mmSize and inchSize keep the tables below readable.
func mmSize(w, h float64) Size   { return NewSize(w, h, Mm) }
func inchSize(w, h float64) Size { return NewSize(w, h, Inch) }

// ISO 216 A series.
var (
	A0Quad   = mmSize(1682, 2378) // 4A0
	A0Double = mmSize(1189, 1682) // 2A0
	A0       = mmSize(841, 1189)
	A1       = mmSize(594, 841)
	A2       = mmSize(420, 594)
	A3       = mmSize(297, 420)
	A4       = mmSize(210, 297)
	A5       = mmSize(148, 210)
	A6       = mmSize(105, 148)
	A7       = mmSize(74, 105)
	A8       = mmSize(52, 74)
	A9       = mmSize(37, 52)
	A10      = mmSize(26, 37)
)

// ISO 216 B series.
var (
	B0  = mmSize(1000, 1414)
	B1  = mmSize(707, 1000)
	B2  = mmSize(500, 707)
	B3  = mmSize(353, 500)
	B4  = mmSize(250, 353)
	B5  = mmSize(176, 250)
	B6  = mmSize(125, 176)
	B7  = mmSize(88, 125)
	B8  = mmSize(62, 88)
	B9  = mmSize(44, 62)
	B10 = mmSize(31, 44)
)

// ISO 269 C series (envelopes).
var (
	C0  = mmSize(917, 1297)
	C1  = mmSize(648, 917)
	C2  = mmSize(458, 648)
	C3  = mmSize(324, 458)
	C4  = mmSize(229, 324)
	C5  = mmSize(162, 229)
	C6  = mmSize(114, 162)
	C7  = mmSize(81, 114)
	C8  = mmSize(57, 81)
	C9  = mmSize(40, 57)
	C10 = mmSize(28, 40)
)

// Non-standard "extra" sizes seen in the wild.
var (
	A2Extra = mmSize(445, 619)
	A3Extra = mmSize(322, 445)
	A3Super = mmSize(305, 508)
	A4Extra = mmSize(235, 322)
	A4Super = mmSize(229, 322)
	A4Long  = mmSize(210, 348)
	A5Extra = mmSize(173, 235)
)

// American paper sizes.
var (
	Letter      = inchSize(8.5, 11)
	Legal       = inchSize(8.5, 14)
	Tabloid     = inchSize(11, 17)
	Ledger      = inchSize(17, 11)
	JuniorLegal = inchSize(5, 8)
	HalfLetter  = inchSize(5.5, 8)
	GovLetter   = inchSize(8, 10.5)
	GovLegal    = inchSize(8.5, 13)
	Executive   = inchSize(7.35, 10.5)
	Folio       = inchSize(8, 13)
	Quarto      = inchSize(9, 11)
	Broadsheet  = inchSize(18, 24)
)

// ISO/IEC 7810 identification cards.
var (
	ID1   = mmSize(85.60, 53.98) // banking and ID cards
	ID2   = mmSize(105, 74)      // French ID cards, visas
	ID3   = mmSize(125, 88)      // passports
	ID000 = mmSize(25, 15)       // SIM cards
)
