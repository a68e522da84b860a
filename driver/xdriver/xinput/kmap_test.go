package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

func TestKeysymTranslate(t *testing.T) {
	type pair struct {
		xks xproto.Keysym
		eks event.KeySym
		ru  rune
	}
	pairs := []pair{
		{0x32, event.KSym2, '2'},
		{0x61, event.KSymA, 'a'},
		{0x41, event.KSymA, 'A'},
		{0x20, event.KSymSpace, ' '},
		{0x2d, event.KSymMinus, '-'},
		{0xffb7, event.KSymKeypad7, '7'},
		{0xffab, event.KSymKeypadAdd, '+'},
		{0xffc2, event.KSymF5, 0xffc2},
	}
	for i, p := range pairs {
		eks, ru := event.KeySymRune(int(p.xks), xKeysymToKeySym)
		if eks != p.eks || ru != p.ru {
			t.Fatalf("entry %v: (0x%x)->(%v,%q), expected (%v,%q)",
				i, p.xks, eks, ru, p.eks, p.ru)
		}
	}
}

func TestModifiersTranslate(t *testing.T) {
	v := uint16(xproto.KeyButMaskShift | xproto.KeyButMaskControl | xproto.KeyButMaskMod1)
	m := translateModifiersToEventKeyModifiers(v)
	if !m.HasAny(event.ModShift) || !m.HasAny(event.ModCtrl) || !m.HasAny(event.ModAlt) {
		t.Fatalf("missing modifiers: %b", m)
	}
	if m.HasAny(event.ModLock) {
		t.Fatalf("unexpected lock modifier: %b", m)
	}
	if m.ClearLocks() != m {
		t.Fatalf("clearlocks changed unrelated modifiers: %b", m)
	}
}

func TestButtonsTranslate(t *testing.T) {
	bs := translateModifiersToEventMouseButtons(xproto.KeyButMaskButton1 | xproto.KeyButMaskButton3)
	if !bs.Has(event.ButtonLeft) || !bs.Has(event.ButtonRight) {
		t.Fatalf("missing buttons: %b", bs)
	}
	if bs.Has(event.ButtonMiddle) {
		t.Fatalf("unexpected middle button: %b", bs)
	}
	if b := translateButtonToEventButton(4); b != event.ButtonWheelUp {
		t.Fatalf("button 4: %v", b)
	}
	if b := translateButtonToEventButton(5); b != event.ButtonWheelDown {
		t.Fatalf("button 5: %v", b)
	}
}
