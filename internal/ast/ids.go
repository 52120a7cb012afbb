package ast

type ValueID uint32

const NoValueID ValueID = 0

func (id ValueID) IsValid() bool { return id != NoValueID }
