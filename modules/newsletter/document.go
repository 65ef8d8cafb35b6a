package newsletter

// Document mutations are pure transformations: every operation deep-copies
// the document and returns the modified copy, leaving the receiver intact.
// That keeps undo stacks and persistence on the calling side trivial — the
// caller always holds complete before/after values.
//
// Operations referencing an id that does not exist return the document
// unchanged. Stale edits from a concurrent editing surface degrade into
// no-ops instead of crashes; this layer performs no I/O and cannot fail.

func (d Document) clone() Document {
	d.Sections = cloneSections(d.Sections)
	return d
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Subsections = cloneSubsections(s.Subsections)
		s.MediaItems = cloneMediaItems(s.MediaItems)
		s.Lists = cloneLists(s.Lists)
		out[i] = s
	}
	return out
}

func cloneSubsections(subs []Subsection) []Subsection {
	if subs == nil {
		return nil
	}
	out := make([]Subsection, len(subs))
	for i, s := range subs {
		s.MediaItems = cloneMediaItems(s.MediaItems)
		s.Lists = cloneLists(s.Lists)
		out[i] = s
	}
	return out
}

func cloneMediaItems(items []MediaItem) []MediaItem {
	if items == nil {
		return nil
	}
	out := make([]MediaItem, len(items))
	copy(out, items)
	return out
}

func cloneLists(lists []ListData) []ListData {
	if lists == nil {
		return nil
	}
	out := make([]ListData, len(lists))
	for i, l := range lists {
		if l.Items != nil {
			items := make([]ListItem, len(l.Items))
			copy(items, l.Items)
			l.Items = items
		}
		out[i] = l
	}
	return out
}

// AddSection appends a new section with editing defaults to the end of the
// section sequence.
func (d Document) AddSection() Document {
	out := d.clone()
	out.Sections = append(out.Sections, NewSection())
	return out
}

// UpdateSection merges the patch into the section with the given id.
func (d Document) UpdateSection(sectionID string, patch SectionPatch) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			patch.apply(&out.Sections[i])
			break
		}
	}
	return out
}

// DeleteSection removes the section and everything it owns: subsections,
// media items, and lists. Irreversible at this layer.
func (d Document) DeleteSection(sectionID string) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
			break
		}
	}
	return out
}

// MoveSection swaps the section at index with its neighbor in the given
// direction. Moves past either boundary are no-ops.
func (d Document) MoveSection(index int, direction Direction) Document {
	out := d.clone()
	j, ok := swapTarget(index, direction, len(out.Sections))
	if !ok {
		return out
	}
	out.Sections[index], out.Sections[j] = out.Sections[j], out.Sections[index]
	return out
}

// AddSubsection appends a new subsection with editing defaults to the
// section with the given id.
func (d Document) AddSubsection(sectionID string) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			out.Sections[i].Subsections = append(out.Sections[i].Subsections, NewSubsection())
			break
		}
	}
	return out
}

// UpdateSubsection merges the patch into the addressed subsection.
func (d Document) UpdateSubsection(sectionID, subsectionID string, patch SubsectionPatch) Document {
	out := d.clone()
	if sub := out.findSubsection(sectionID, subsectionID); sub != nil {
		patch.apply(sub)
	}
	return out
}

// DeleteSubsection removes the addressed subsection and everything it owns.
func (d Document) DeleteSubsection(sectionID, subsectionID string) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		subs := out.Sections[i].Subsections
		for j := range subs {
			if subs[j].ID == subsectionID {
				out.Sections[i].Subsections = append(subs[:j], subs[j+1:]...)
				break
			}
		}
		break
	}
	return out
}

// MoveSubsection swaps the subsection at index with its neighbor in the
// given direction, within the section's subsection sequence.
func (d Document) MoveSubsection(sectionID string, index int, direction Direction) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		subs := out.Sections[i].Subsections
		j, ok := swapTarget(index, direction, len(subs))
		if ok {
			subs[index], subs[j] = subs[j], subs[index]
		}
		break
	}
	return out
}

// AddMediaItem appends the media item to the addressed owner. An empty
// subsectionID addresses the section itself.
func (d Document) AddMediaItem(sectionID, subsectionID string, item MediaItem) Document {
	out := d.clone()
	if owner := out.findOwner(sectionID, subsectionID); owner != nil {
		*owner.media = append(*owner.media, item)
	}
	return out
}

// UpdateMediaItem merges the patch into the addressed media item.
func (d Document) UpdateMediaItem(sectionID, subsectionID, mediaID string, patch MediaItemPatch) Document {
	out := d.clone()
	owner := out.findOwner(sectionID, subsectionID)
	if owner == nil {
		return out
	}
	items := *owner.media
	for i := range items {
		if items[i].ID == mediaID {
			patch.apply(&items[i])
			break
		}
	}
	return out
}

// RemoveMediaItem removes the addressed media item. If the item carries
// non-empty TextContent, that text is preserved: it is appended to the
// owner's content — or to a subsection's AfterListContent when the item
// trailed the subsection's list block — joined by a blank line when the
// target is non-empty.
func (d Document) RemoveMediaItem(sectionID, subsectionID, mediaID string) Document {
	out := d.clone()
	owner := out.findOwner(sectionID, subsectionID)
	if owner == nil {
		return out
	}
	items := *owner.media
	for i := range items {
		if items[i].ID != mediaID {
			continue
		}
		if text := items[i].TextContent; text != "" {
			target := owner.content
			if owner.afterList != nil && len(*owner.lists) > 0 {
				target = owner.afterList
			}
			*target = joinBlankLine(*target, text)
		}
		*owner.media = append(items[:i], items[i+1:]...)
		break
	}
	return out
}

// AddList appends the list to the addressed owner.
func (d Document) AddList(sectionID, subsectionID string, list ListData) Document {
	out := d.clone()
	if owner := out.findOwner(sectionID, subsectionID); owner != nil {
		*owner.lists = append(*owner.lists, list)
	}
	return out
}

// UpdateList merges the patch into the addressed list.
func (d Document) UpdateList(sectionID, subsectionID, listID string, patch ListPatch) Document {
	out := d.clone()
	if list := out.findList(sectionID, subsectionID, listID); list != nil {
		patch.apply(list)
	}
	return out
}

// DeleteList removes the addressed list and its items.
func (d Document) DeleteList(sectionID, subsectionID, listID string) Document {
	out := d.clone()
	owner := out.findOwner(sectionID, subsectionID)
	if owner == nil {
		return out
	}
	lists := *owner.lists
	for i := range lists {
		if lists[i].ID == listID {
			*owner.lists = append(lists[:i], lists[i+1:]...)
			break
		}
	}
	return out
}

// AddListItem appends the item to the addressed list.
func (d Document) AddListItem(sectionID, subsectionID, listID string, item ListItem) Document {
	out := d.clone()
	if list := out.findList(sectionID, subsectionID, listID); list != nil {
		list.Items = append(list.Items, item)
	}
	return out
}

// UpdateListItem merges the patch into the addressed list item.
func (d Document) UpdateListItem(sectionID, subsectionID, listID, itemID string, patch ListItemPatch) Document {
	out := d.clone()
	list := out.findList(sectionID, subsectionID, listID)
	if list == nil {
		return out
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			patch.apply(&list.Items[i])
			break
		}
	}
	return out
}

// DeleteListItem removes the addressed list item.
func (d Document) DeleteListItem(sectionID, subsectionID, listID, itemID string) Document {
	out := d.clone()
	list := out.findList(sectionID, subsectionID, listID)
	if list == nil {
		return out
	}
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			list.Items = append(list.Items[:i], list.Items[i+1:]...)
			break
		}
	}
	return out
}

// contentOwner points into a cloned document at the collections of a
// Section or Subsection. afterList is nil for sections, which do not have
// an after-list text block.
type contentOwner struct {
	media     *[]MediaItem
	lists     *[]ListData
	content   *string
	afterList *string
}

func (d *Document) findOwner(sectionID, subsectionID string) *contentOwner {
	for i := range d.Sections {
		if d.Sections[i].ID != sectionID {
			continue
		}
		sec := &d.Sections[i]
		if subsectionID == "" {
			return &contentOwner{
				media:   &sec.MediaItems,
				lists:   &sec.Lists,
				content: &sec.Content,
			}
		}
		for j := range sec.Subsections {
			if sec.Subsections[j].ID == subsectionID {
				sub := &sec.Subsections[j]
				return &contentOwner{
					media:     &sub.MediaItems,
					lists:     &sub.Lists,
					content:   &sub.Content,
					afterList: &sub.AfterListContent,
				}
			}
		}
		return nil
	}
	return nil
}

func (d *Document) findSubsection(sectionID, subsectionID string) *Subsection {
	for i := range d.Sections {
		if d.Sections[i].ID != sectionID {
			continue
		}
		for j := range d.Sections[i].Subsections {
			if d.Sections[i].Subsections[j].ID == subsectionID {
				return &d.Sections[i].Subsections[j]
			}
		}
		return nil
	}
	return nil
}

func (d *Document) findList(sectionID, subsectionID, listID string) *ListData {
	owner := d.findOwner(sectionID, subsectionID)
	if owner == nil {
		return nil
	}
	lists := *owner.lists
	for i := range lists {
		if lists[i].ID == listID {
			return &lists[i]
		}
	}
	return nil
}

func swapTarget(index int, direction Direction, length int) (int, bool) {
	if index < 0 || index >= length {
		return 0, false
	}
	switch direction {
	case MoveUp:
		if index == 0 {
			return 0, false
		}
		return index - 1, true
	case MoveDown:
		if index == length-1 {
			return 0, false
		}
		return index + 1, true
	}
	return 0, false
}

func joinBlankLine(existing, text string) string {
	if existing == "" {
		return text
	}
	return existing + "\n\n" + text
}
