// Package cryptoprovider implements the crypto contract the engine
// treats as opaque: Provider is the interface callers use to wrap a
// payload before calling engine.Embed and unwrap it after
// engine.Extract; the engine itself never imports this package.
package cryptoprovider
