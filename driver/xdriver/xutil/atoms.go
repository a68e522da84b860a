package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Fills a struct with xproto.Atom fields from the x server. Fields can be
// tagged with `loadAtoms:"atomname"`, otherwise the field name is used.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	// request atoms (pipelined, replies read later)
	typ := reflect.Indirect(reflect.ValueOf(st)).Type()
	var cookies []xproto.InternAtomCookie
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)

		name := sf.Name
		tagStr := sf.Tag.Get("loadAtoms")
		if tagStr != "" {
			name = tagStr
		}
		cookie := xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
		cookies = append(cookies, cookie)
	}
	// get atoms
	val := reflect.Indirect(reflect.ValueOf(st))
	for i := 0; i < val.NumField(); i++ {
		reply, err := cookies[i].Reply()
		if err != nil {
			return err
		}
		v := val.Field(i)
		v.Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}
