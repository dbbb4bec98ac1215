// Copyright © 2026 The escope authors

package lint

import "sort"

// Environment presets name the ambient globals a host provides. The
// builtin set is always in force; the others are opted into through the
// `envs` list in the configuration.
var environments = map[string][]string{
	"builtin": builtinGlobals,
	"browser": browserGlobals,
	"node":    nodeGlobals,
}

// builtinGlobalSet builds the always-on name set.
func builtinGlobalSet() map[string]bool {
	set := make(map[string]bool, len(builtinGlobals))
	for _, name := range builtinGlobals {
		set[name] = true
	}
	return set
}

// EnvNames returns the available environment preset names, sorted.
func EnvNames() []string {
	names := make([]string, 0, len(environments))
	for name := range environments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builtinGlobals are the standard ECMAScript globals present in every
// conforming host.
var builtinGlobals = []string{
	"AggregateError",
	"Array",
	"ArrayBuffer",
	"Atomics",
	"BigInt",
	"BigInt64Array",
	"BigUint64Array",
	"Boolean",
	"DataView",
	"Date",
	"Error",
	"EvalError",
	"FinalizationRegistry",
	"Float32Array",
	"Float64Array",
	"Function",
	"Infinity",
	"Int16Array",
	"Int32Array",
	"Int8Array",
	"JSON",
	"Map",
	"Math",
	"NaN",
	"Number",
	"Object",
	"Promise",
	"Proxy",
	"RangeError",
	"ReferenceError",
	"Reflect",
	"RegExp",
	"Set",
	"SharedArrayBuffer",
	"String",
	"Symbol",
	"SyntaxError",
	"TypeError",
	"URIError",
	"Uint16Array",
	"Uint32Array",
	"Uint8Array",
	"Uint8ClampedArray",
	"WeakMap",
	"WeakRef",
	"WeakSet",
	"decodeURI",
	"decodeURIComponent",
	"encodeURI",
	"encodeURIComponent",
	"eval",
	"globalThis",
	"isFinite",
	"isNaN",
	"parseFloat",
	"parseInt",
	"undefined",
}

var browserGlobals = []string{
	"AbortController",
	"AbortSignal",
	"Audio",
	"Blob",
	"CustomEvent",
	"DOMParser",
	"Element",
	"Event",
	"EventTarget",
	"File",
	"FileReader",
	"FormData",
	"HTMLElement",
	"Headers",
	"Image",
	"IntersectionObserver",
	"MutationObserver",
	"Node",
	"Request",
	"ResizeObserver",
	"Response",
	"URL",
	"URLSearchParams",
	"WebSocket",
	"Worker",
	"XMLHttpRequest",
	"alert",
	"atob",
	"btoa",
	"cancelAnimationFrame",
	"clearInterval",
	"clearTimeout",
	"confirm",
	"console",
	"crypto",
	"document",
	"fetch",
	"getComputedStyle",
	"history",
	"indexedDB",
	"localStorage",
	"location",
	"matchMedia",
	"navigator",
	"performance",
	"prompt",
	"queueMicrotask",
	"requestAnimationFrame",
	"screen",
	"self",
	"sessionStorage",
	"setInterval",
	"setTimeout",
	"window",
}

var nodeGlobals = []string{
	"AbortController",
	"AbortSignal",
	"Buffer",
	"TextDecoder",
	"TextEncoder",
	"URL",
	"URLSearchParams",
	"__dirname",
	"__filename",
	"clearImmediate",
	"clearInterval",
	"clearTimeout",
	"console",
	"exports",
	"fetch",
	"global",
	"module",
	"performance",
	"process",
	"queueMicrotask",
	"require",
	"setImmediate",
	"setInterval",
	"setTimeout",
	"structuredClone",
}
