package qemu

import (
	"fmt"
	"strings"
)

type drive struct {
	path   string
	format string
	iftype string
	ID     string
}

func (d drive) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("-drive file=%s", d.path))
	if len(d.format) > 0 {
		sb.WriteString(fmt.Sprintf(",format=%s", d.format))
	}
	if len(d.iftype) > 0 {
		sb.WriteString(fmt.Sprintf(",if=%s", d.iftype))
	}
	if len(d.ID) > 0 {
		sb.WriteString(fmt.Sprintf(",id=%s", d.ID))
	}
	return sb.String()
}

type device struct {
	driver string
	serial string
	drive  string
}

func (dv device) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("-device %s", dv.driver))
	if len(dv.serial) > 0 {
		sb.WriteString(fmt.Sprintf(",serial=%s", dv.serial))
	}
	if len(dv.drive) > 0 {
		sb.WriteString(fmt.Sprintf(",drive=%s", dv.drive))
	}
	return sb.String()
}

type display struct {
	disptype string
}

func (d display) String() string {
	return fmt.Sprintf("-display %s", d.disptype)
}

type serial struct {
	serialtype string
}

func (s serial) String() string {
	return fmt.Sprintf("-serial %s", s.serialtype)
}
