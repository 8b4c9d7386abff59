package log

import "sync"

// A ContextAdder adds fields to every log entry, whatever the module.
type ContextAdder interface {
	AddLogContext(z *EntryZ)
}

var (
	ctxmu    sync.Mutex
	contexts []ContextAdder
)

// AddContext registers c. It returns a function that unregisters it.
func AddContext(c ContextAdder) (remove func()) {
	ctxmu.Lock()
	contexts = append(contexts, c)
	ctxmu.Unlock()

	return func() {
		ctxmu.Lock()
		defer ctxmu.Unlock()
		for i := range contexts {
			if contexts[i] == c {
				contexts = append(contexts[:i], contexts[i+1:]...)
				return
			}
		}
	}
}

func addContexts(z *EntryZ) {
	ctxmu.Lock()
	defer ctxmu.Unlock()
	for _, c := range contexts {
		c.AddLogContext(z)
	}
}
