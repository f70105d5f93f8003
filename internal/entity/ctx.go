package entity

type CtxKeyCaller struct{}
