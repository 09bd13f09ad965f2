// Package assert panics on programmer errors like missing constructor
// dependencies, it is never used for input coming from users or websites.
package assert

import "fmt"

func NotNil(value any, name string) {
	if value == nil {
		panic(fmt.Sprintf("expected %s to be not nil", name))
	}
}

func NotEmptyStr(str string, name string) {
	if str == "" {
		panic(fmt.Sprintf("expected %s to be non-empty", name))
	}
}
