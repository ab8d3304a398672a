// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/wonsjb/caemu/internal/pinlist"
)

// pinConnecter is implemented by every typed pin wrapper (In, Out, InOut
// and their bus variants).
//
type pinConnecter interface {
	Connect(*Bus)
}

// BindTags wires the exported In/Out/InOut/InBus/OutBus/InOutBus fields of
// the struct pointed to by v from `caemu:"..."` struct tags holding a
// comma-separated, 1-based pin-number list, e.g.:
//
//	type nand struct {
//		A caemu.InBus  `caemu:"1,4,10,13"`
//		B caemu.InBus  `caemu:"2,5,9,12"`
//		Y caemu.OutBus `caemu:"3,6,8,11"`
//	}
//
// This is a runtime substitute for the declarative-pin-list macro the
// original source generates at compile time (see spec's "macro-generated
// pin layout" design note): fields without a `caemu` tag are left
// untouched, so plain Go fields can still be mixed in for internal state.
//
// A field tagged `caemu:"1,4,10,13"` with an In or Out type only consumes
// the first id in the list; bus fields (InBus/OutBus/InOutBus) consume the
// whole list, one id per bit, low bit first.
//
func BindTags(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(errors.Errorf("caemu.BindTags: %T is not a pointer to struct", v))
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		tag, ok := f.Tag.Lookup("caemu")
		if !ok {
			continue
		}
		ids := pinlist.MustParse(tag)
		fv := rv.Field(i)
		switch fv.Interface().(type) {
		case In:
			fv.Set(reflect.ValueOf(NewIn(firstID(f.Name, ids))))
		case Out:
			fv.Set(reflect.ValueOf(NewOut(firstID(f.Name, ids))))
		case InOut:
			fv.Set(reflect.ValueOf(NewInOut(firstID(f.Name, ids))))
		case InBus:
			fv.Set(reflect.ValueOf(NewInBus(ids)))
		case OutBus:
			fv.Set(reflect.ValueOf(NewOutBus(ids)))
		case InOutBus:
			fv.Set(reflect.ValueOf(NewInOutBus(ids)))
		default:
			panic(errors.Errorf("caemu.BindTags: unsupported field type %s for field %s", f.Type, f.Name))
		}
	}
}

func firstID(field string, ids []int) int {
	if len(ids) == 0 {
		panic(errors.Errorf("caemu.BindTags: empty pin list for field %s", field))
	}
	return ids[0]
}

// ConnectTags calls Connect(bus) on every `caemu`-tagged field of the
// struct pointed to by v, the runtime counterpart to BindTags. Components
// built with BindTags should call ConnectTags from their Connect method.
//
func ConnectTags(v interface{}, bus *Bus) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(errors.Errorf("caemu.ConnectTags: %T is not a pointer to struct", v))
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		if _, ok := rt.Field(i).Tag.Lookup("caemu"); !ok {
			continue
		}
		fv := rv.Field(i)
		c, ok := fv.Addr().Interface().(pinConnecter)
		if !ok {
			panic(errors.Errorf("caemu.ConnectTags: field %s does not implement Connect(*Bus)", rt.Field(i).Name))
		}
		c.Connect(bus)
	}
}
