package types

// Type 表示语言的基本类型
type Type int

const (
	Invalid Type = iota // 未解析或出错的类型
	Int
	Float
	String
	Bool
	Void // 仅用于函数返回类型
)

var typeNames = map[Type]string{
	Invalid: "invalid",
	Int:     "int",
	Float:   "float",
	String:  "string",
	Bool:    "bool",
	Void:    "void",
}

// String 返回类型名称
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsNumeric 判断是否为数值类型
func (t Type) IsNumeric() bool {
	return t == Int || t == Float
}

// IsValue 判断是否为合法的变量/参数/表达式类型
func (t Type) IsValue() bool {
	switch t {
	case Int, Float, String, Bool:
		return true
	}
	return false
}

// Promote 计算两个数值操作数的公共类型
// int 和 float 混合运算提升为 float，同类型保持不变
func Promote(a, b Type) (Type, bool) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Invalid, false
	}
	if a == Float || b == Float {
		return Float, true
	}
	return Int, true
}

// AssignableTo 判断 src 类型的值能否赋给 dst 类型
// 赋值不做隐式转换，类型必须一致
func AssignableTo(src, dst Type) bool {
	return src == dst && src.IsValue()
}
