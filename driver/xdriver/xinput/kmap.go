package xinput

import (
	"fmt"
	"unicode"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/pointcloud/util/uiutil/event"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/XGetKeyboardMapping.html
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

// Keyboard mapping
type KMap struct {
	si    *xproto.SetupInfo
	reply *xproto.GetKeyboardMappingReply
	conn  *xgb.Conn
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	err := km.ReadTable()
	if err != nil {
		return nil, err
	}
	return km, nil
}

func (km *KMap) ReadTable() error {
	si := xproto.Setup(km.conn)
	count := byte(si.MaxKeycode - si.MinKeycode + 1)
	if count == 0 {
		return fmt.Errorf("bad keycode count: %v", count)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, count).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	km.reply = reply
	km.si = si
	return nil
}

func (km *KMap) Lookup(keycode xproto.Keycode, kmods uint16) (event.KeySym, rune) {
	kss := km.keycodeToKeysyms(keycode)
	ks := km.keysymsToKeysym(kss, kmods)
	return event.KeySymRune(int(ks), xKeysymToKeySym)
}

func (km *KMap) keycodeToKeysyms(keycode xproto.Keycode) []xproto.Keysym {
	y := int(keycode - km.si.MinKeycode)
	n := km.si.MaxKeycode - km.si.MinKeycode + 1
	if y < 0 || y >= int(n) {
		return nil
	}
	stride := int(km.reply.KeysymsPerKeycode) // usually ~7
	return km.reply.Keysyms[y*stride : (y+1)*stride]
}

// Chooses among a keycode's keysym list based on the active modifiers.
func (km *KMap) keysymsToKeysym(kss []xproto.Keysym, m uint16) xproto.Keysym {
	em := translateModifiersToEventKeyModifiers(m)

	hasShift := em.HasAny(event.ModShift)
	hasCaps := em.HasAny(event.ModLock)
	hasCtrl := em.HasAny(event.ModCtrl)
	hasAltGr := em.HasAny(event.ModAltGr)
	hasNumLock := em.HasAny(event.ModNum)

	// keysym group
	group := 0
	if hasCtrl {
		group = 1
	} else if hasAltGr {
		group = 2
	}

	// each group has two symbols
	i1 := group * 2
	i2 := i1 + 1
	if i1 >= len(kss) {
		return 0
	}
	if i2 >= len(kss) {
		i2 = i1
	}
	ks1, ks2 := kss[i1], kss[i2]
	if ks2 == 0 {
		ks2 = ks1
	}

	// keypad
	if hasNumLock && isKeypad(ks2) {
		if hasShift {
			return ks1
		}
		return ks2
	}

	r1 := rune(ks1)
	hasLower := unicode.IsLower(unicode.ToLower(r1))
	if hasLower {
		shifted := hasShift != hasCaps
		if shifted {
			return ks2
		}
		return ks1
	}

	if hasShift {
		return ks2
	}
	return ks1
}

func isKeypad(ks xproto.Keysym) bool {
	return (0xFF80 <= ks && ks <= 0xFFBD) ||
		(0x11000000 <= ks && ks <= 0x1100FFFF)
}
