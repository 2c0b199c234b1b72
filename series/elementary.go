package series

// Scalar evaluators. They apply an elementary function to one coefficient,
// usually the constant term of a series, to seed a Taylor recurrence.

func (r Ring[C]) Sin(c C) C   { return r.f.Apply(FuncSin, c) }
func (r Ring[C]) Cos(c C) C   { return r.f.Apply(FuncCos, c) }
func (r Ring[C]) Tan(c C) C   { return r.f.Apply(FuncTan, c) }
func (r Ring[C]) Asin(c C) C  { return r.f.Apply(FuncAsin, c) }
func (r Ring[C]) Acos(c C) C  { return r.f.Apply(FuncAcos, c) }
func (r Ring[C]) Atan(c C) C  { return r.f.Apply(FuncAtan, c) }
func (r Ring[C]) Sinh(c C) C  { return r.f.Apply(FuncSinh, c) }
func (r Ring[C]) Cosh(c C) C  { return r.f.Apply(FuncCosh, c) }
func (r Ring[C]) Tanh(c C) C  { return r.f.Apply(FuncTanh, c) }
func (r Ring[C]) Asinh(c C) C { return r.f.Apply(FuncAsinh, c) }
func (r Ring[C]) Atanh(c C) C { return r.f.Apply(FuncAtanh, c) }
func (r Ring[C]) Exp(c C) C   { return r.f.Apply(FuncExp, c) }
func (r Ring[C]) Log(c C) C   { return r.f.Apply(FuncLog, c) }
