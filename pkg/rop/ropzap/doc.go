// Package ropzap renders the sum types and the error hierarchy as structured
// zap fields. The fields never panic, also not for zero values.
//
//	logger.Info("lookup", ropzap.Option("user", user), ropzap.Result("load", res))
package ropzap
