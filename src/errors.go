// Package src 自定义错误库
package src

import (
	"strconv"
)

type srError int

func (e srError) Error() string {
	if 0 <= int(e) && int(e) < len(srErrors) {
		s := srErrors[e]
		if s != "" {
			return s
		}
	}
	return "errno " + strconv.Itoa(int(e))
}

var srErrors = [...]string{
	0x01: "container is empty",
	0x02: "invalid position",
	0x03: "memory allocation failed",
	0x04: "unknown command",
	0x05: "wrong number of arguments",
	0x06: "value is not an integer",
	0x07: "invalid option",
}
