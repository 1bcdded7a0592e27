package resource

// Field は update_mask で指定できる可変フィールド
type Field[E any] struct {
	Path string
	Copy func(dst, src *E)
}

// Mask はリソースごとの update_mask 解決ルール
type Mask[E any] struct {
	fields    []Field[E]
	byPath    map[string]Field[E]
	immutable map[string]string
}

// NewMask は可変フィールドの一覧から Mask を作成する
func NewMask[E any](fields ...Field[E]) *Mask[E] {
	m := &Mask[E]{
		fields:    fields,
		byPath:    make(map[string]Field[E], len(fields)),
		immutable: make(map[string]string),
	}
	for _, f := range fields {
		m.byPath[f.Path] = f
	}
	return m
}

// WithImmutable は更新不可のパスと、指定された場合のエラーメッセージを登録する
func (m *Mask[E]) WithImmutable(msg string, paths ...string) *Mask[E] {
	for _, p := range paths {
		m.immutable[p] = msg
	}
	return m
}

// Paths は可変フィールドのパスを定義順に返す
func (m *Mask[E]) Paths() []string {
	paths := make([]string, len(m.fields))
	for i, f := range m.fields {
		paths[i] = f.Path
	}
	return paths
}

// Check はすべてのパスが可変フィールドであることを確認する
func (m *Mask[E]) Check(paths []string) error {
	for _, p := range paths {
		if _, ok := m.byPath[p]; ok {
			continue
		}
		if msg, ok := m.immutable[p]; ok {
			return InvalidArgument(msg)
		}
		return InvalidArgumentf("update_mask のパス %q はサポートされていません", p)
	}
	return nil
}

// Apply は existing に proposed の値をマージした新しいエンティティを返す
//
// paths が空なら全可変フィールドを置き換える。未知のパスが1つでもあれば何も適用せずにエラーを返す。
// existing と proposed は変更しない。
func (m *Mask[E]) Apply(existing, proposed *E, paths []string) (*E, error) {
	if err := m.Check(paths); err != nil {
		return nil, err
	}

	resolved := *existing
	if len(paths) == 0 {
		for _, f := range m.fields {
			f.Copy(&resolved, proposed)
		}
		return &resolved, nil
	}
	for _, p := range paths {
		m.byPath[p].Copy(&resolved, proposed)
	}
	return &resolved, nil
}
