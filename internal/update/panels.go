package update

import (
	"github.com/sandeepkv93/taskcal/internal/projection"
	"github.com/sandeepkv93/taskcal/internal/views"
)

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderEditor() string {
	return views.RenderEditor(views.EditorData{
		Active:    m.Editor.Active,
		Adding:    m.Editor.Adding,
		DateView:  m.dateInput.View(),
		TitleView: m.titleInput.View(),
		DescView:  m.descArea.View(),
		ErrorText: m.Editor.Err,
	})
}

func (m Model) renderDetail(vm projection.ViewModel) string {
	item, date, ok := vm.Find(m.CursorID)
	return views.RenderDetail(views.DetailData{
		Item:     item,
		Date:     date,
		Found:    ok,
		Markdown: m.markdown,
	})
}
