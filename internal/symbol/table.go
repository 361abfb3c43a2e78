package symbol

import (
	"github.com/Riyyan-Siddiqui/MyLang-Compiler/internal/types"
)

// SymbolKind 符号类型
type SymbolKind int

const (
	SymbolVar SymbolKind = iota
	SymbolParam
)

// Symbol 表示一个变量或参数的声明信息
type Symbol struct {
	Name   string
	Kind   SymbolKind
	Type   types.Type
	Line   int // 声明位置
	Column int
	IRName string // IR 阶段使用的唯一名称，由下沉阶段填写
}

// FuncSig 顶层函数签名
type FuncSig struct {
	Name   string
	Params []types.Type // 参数类型，有序
	Ret    types.Type
	Line   int
	Column int
}

// NoScope 表示没有父作用域
const NoScope = -1

// scope 单个作用域记录
type scope struct {
	parent int
	names  map[string]*Symbol
}

// Arena 作用域记录的竞技场
// 作用域通过整数句柄引用，父子关系用句柄表达，不共享可变引用
type Arena struct {
	scopes []scope
}

// NewArena 创建一个空的作用域竞技场
func NewArena() *Arena {
	return &Arena{}
}

// Push 创建一个新作用域并返回它的句柄
// parent 为 NoScope 时表示函数体的最外层作用域
func (a *Arena) Push(parent int) int {
	a.scopes = append(a.scopes, scope{parent: parent, names: make(map[string]*Symbol)})
	return len(a.scopes) - 1
}

// Declare 在指定作用域中声明符号
// 同一作用域内重复声明返回 false
func (a *Arena) Declare(handle int, sym *Symbol) bool {
	s := &a.scopes[handle]
	if _, exists := s.names[sym.Name]; exists {
		return false
	}
	s.names[sym.Name] = sym
	return true
}

// Lookup 从指定作用域向外查找符号
// 内层作用域的声明遮蔽外层同名声明
func (a *Arena) Lookup(handle int, name string) *Symbol {
	for handle != NoScope {
		s := &a.scopes[handle]
		if sym, ok := s.names[name]; ok {
			return sym
		}
		handle = s.parent
	}
	return nil
}

// LookupLocal 只在指定作用域本层查找符号
func (a *Arena) LookupLocal(handle int, name string) *Symbol {
	if sym, ok := a.scopes[handle].names[name]; ok {
		return sym
	}
	return nil
}

// Table 顶层函数签名表
type Table struct {
	funcs map[string]*FuncSig
	order []string // 保持声明顺序
}

// NewTable 创建一个新的函数签名表
func NewTable() *Table {
	return &Table{funcs: make(map[string]*FuncSig)}
}

// Add 注册函数签名，重名返回 false
func (t *Table) Add(sig *FuncSig) bool {
	if _, exists := t.funcs[sig.Name]; exists {
		return false
	}
	t.funcs[sig.Name] = sig
	t.order = append(t.order, sig.Name)
	return true
}

// Get 获取函数签名
func (t *Table) Get(name string) *FuncSig {
	return t.funcs[name]
}

// Names 按声明顺序返回所有函数名
func (t *Table) Names() []string {
	return t.order
}

// Len 返回注册的函数数量
func (t *Table) Len() int {
	return len(t.funcs)
}
