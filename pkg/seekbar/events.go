package seekbar

// 指针/按键事件类型
//
// 控件核心不依赖任何平台事件类型：宿主（或 pkg/render 的输入适配器）
// 把平台输入翻译成这里定义的事件，再同步派发进状态机。

// PointerEventKind 指针事件类型
type PointerEventKind int

const (
	// PointerDown 指针按下
	PointerDown PointerEventKind = iota
	// PointerMove 指针移动（按下期间）
	PointerMove
	// PointerUp 指针抬起
	PointerUp
	// PointerCancel 指针取消（触摸被系统打断等）
	PointerCancel
)

// PointerEvent 一次指针事件
// 坐标为控件本地坐标（相对控件左上角，单位像素）
type PointerEvent struct {
	Kind PointerEventKind
	X    int
	Y    int
}

// KeyKind 按键步进类型
type KeyKind int

const (
	// KeyDecrement 减小一步（方向键左）
	KeyDecrement KeyKind = iota
	// KeyIncrement 增大一步（方向键右）
	KeyIncrement
)
