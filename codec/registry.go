package codec

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/avfoundation/media"
)

// The process-wide factory registry. Lifecycle equals process lifetime;
// there is no unregistration.
var registry = struct {
	mu        sync.RWMutex
	factories []Factory
}{}

// RegisterFactory adds a factory to the process-wide registry. Factories
// are usually registered from init functions or early in main.
func RegisterFactory(factory Factory) error {
	if factory == nil {
		logrus.WithFields(logrus.Fields{
			"function": "RegisterFactory",
		}).Error("Rejecting nil codec factory")
		return ErrNilFactory
	}

	registry.mu.Lock()
	registry.factories = append(registry.factories, factory)
	count := len(registry.factories)
	registry.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":  "RegisterFactory",
		"factory":   factory.Name(),
		"priority":  factory.Priority(),
		"supported": len(factory.SupportedCodecs()),
		"total":     count,
	}).Info("Codec factory registered")
	return nil
}

// candidates returns the registered factories sorted by priority
// descending. The sort is stable, so equal priorities keep registration
// order, which is the documented tie-break.
func candidates() []Factory {
	registry.mu.RLock()
	out := make([]Factory, len(registry.factories))
	copy(out, registry.factories)
	registry.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority() > out[j].Priority()
	})
	return out
}

// CreateCodecByType instantiates a codec for the given id and direction
// from the highest-priority factory that supports it.
func CreateCodecByType(id media.CodecID, encoder bool) (Codec, error) {
	for _, f := range candidates() {
		if !factorySupports(f, id, encoder) {
			continue
		}
		c, err := f.CreateByID(id, encoder)
		if err != nil {
			return nil, fmt.Errorf("factory %q: %w", f.Name(), err)
		}
		logrus.WithFields(logrus.Fields{
			"function": "CreateCodecByType",
			"codec_id": id.String(),
			"encoder":  encoder,
			"factory":  f.Name(),
		}).Debug("Codec created")
		return c, nil
	}
	return nil, fmt.Errorf("codec %v (encoder=%v): %w", id, encoder, ErrNoFactory)
}

// CreateCodecByName instantiates the codec registered under name from the
// highest-priority factory advertising it.
func CreateCodecByName(name string) (Codec, error) {
	for _, f := range candidates() {
		if !factoryHasName(f, name) {
			continue
		}
		c, err := f.CreateByName(name)
		if err != nil {
			return nil, fmt.Errorf("factory %q: %w", f.Name(), err)
		}
		logrus.WithFields(logrus.Fields{
			"function": "CreateCodecByName",
			"codec":    name,
			"factory":  f.Name(),
		}).Debug("Codec created")
		return c, nil
	}
	return nil, fmt.Errorf("codec %q: %w", name, ErrNoFactory)
}

// SupportedCodecs reports the union of every registered factory's codecs,
// in priority order.
func SupportedCodecs() []CodecInfo {
	var out []CodecInfo
	for _, f := range candidates() {
		out = append(out, f.SupportedCodecs()...)
	}
	return out
}

func factorySupports(f Factory, id media.CodecID, encoder bool) bool {
	for _, info := range f.SupportedCodecs() {
		if info.ID == id && info.Encoder == encoder {
			return true
		}
	}
	return false
}

func factoryHasName(f Factory, name string) bool {
	for _, info := range f.SupportedCodecs() {
		if info.Name == name {
			return true
		}
	}
	return false
}

// resetRegistry clears all registrations. Test use only.
func resetRegistry() {
	registry.mu.Lock()
	registry.factories = nil
	registry.mu.Unlock()
}
