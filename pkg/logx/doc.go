// Package logx is a thin structured-logging facade over zerolog.
//
// Components hold a Logger (cheap value, safe to copy) and tag themselves
// with With(logx.String("comp", ...)). The backing Service can be re-applied
// at runtime (level / sinks) without components noticing.
package logx
