//go:build tinygo

package theremin

import (
	"sync"
)

type mutex struct {
	sync.Mutex
}

type rwMutex struct {
	sync.RWMutex
}
