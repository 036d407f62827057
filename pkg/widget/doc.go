// Package widget holds the configuration model shared by every widget.
//
// Config is an immutable value: each With* call returns a copy and map
// options are merged key by key, so a Config can be shared between widgets
// without aliasing. Options is its partial counterpart; nil fields mean
// "not set". A Layers stack applies several Options in precedence order and
// Layers.Definitions walks one level down to the options a composite widget
// forwards to its children.
//
// DefaultValues keys partial options by widget name. A field keeps a Cascade
// of them and resolves a widget's configuration as
//
//	widget defaults < field-wide config < DefaultValues[name] < call-site options
//
// DecodeOptions and DecodeDefaultValues accept loosely typed maps (YAML,
// JSON or Go literals) in both plain ("containerClass") and call style
// ("containerClass()" with a one-element argument list).
package widget
