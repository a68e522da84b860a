package event

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSym0
	KSym1
	KSym2
	KSym3
	KSym4
	KSym5
	KSym6
	KSym7
	KSym8
	KSym9

	KSymA
	KSymB
	KSymC
	KSymD
	KSymE
	KSymF
	KSymG
	KSymH
	KSymI
	KSymJ
	KSymK
	KSymL
	KSymM
	KSymN
	KSymO
	KSymP
	KSymQ
	KSymR
	KSymS
	KSymT
	KSymU
	KSymV
	KSymW
	KSymX
	KSymY
	KSymZ

	KSymSpace
	KSymPlus  // +
	KSymMinus // -

	KSymBackspace
	KSymReturn
	KSymEscape
	KSymHome
	KSymLeft
	KSymUp
	KSymRight
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymEnd
	KSymInsert
	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
	KSymAltGr
	KSymSuperL // windows key
	KSymSuperR
	KSymDelete
	KSymTab
	KSymTabLeft

	KSymNumLock
	KSymCapsLock
	KSymShiftLock

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12

	KSymKeypad0
	KSymKeypad1
	KSymKeypad2
	KSymKeypad3
	KSymKeypad4
	KSymKeypad5
	KSymKeypad6
	KSymKeypad7
	KSymKeypad8
	KSymKeypad9
	KSymKeypadMultiply
	KSymKeypadAdd
	KSymKeypadSubtract
	KSymKeypadDecimal
	KSymKeypadDivide
)

//----------

func KeySymRune(vkey int, vKeyToKeySym func(int) KeySym) (KeySym, rune) {
	// default direct translation (covers some ascii values)
	ks := KeySym(vkey)
	ru := rune(ks)

	// actual translation
	if ks2 := vKeyToKeySym(vkey); ks2 != KSymNone {
		ks = ks2
	}
	if ru2 := keySymRune2(ks); ru2 != 0 {
		ru = ru2
	}

	return ks, ru
}

func keySymRune2(ks KeySym) rune {
	switch ks {
	case KSymPlus, KSymKeypadAdd:
		return '+'
	case KSymMinus, KSymKeypadSubtract:
		return '-'
	case KSymKeypad0:
		return '0'
	case KSymKeypad1:
		return '1'
	case KSymKeypad2:
		return '2'
	case KSymKeypad3:
		return '3'
	case KSymKeypad4:
		return '4'
	case KSymKeypad5:
		return '5'
	case KSymKeypad6:
		return '6'
	case KSymKeypad7:
		return '7'
	case KSymKeypad8:
		return '8'
	case KSymKeypad9:
		return '9'
	case KSymKeypadMultiply:
		return '*'
	case KSymKeypadDecimal:
		return '.'
	case KSymKeypadDivide:
		return '/'
	}
	return rune(0)
}
