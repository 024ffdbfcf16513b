package model

// Profile 学习者档案，整个实例全局唯一（对应原型中"每个浏览器一份"）
// swagger:model Profile
type Profile struct {
	Name          string `json:"name"`
	Institution   string `json:"institution"`
	Syllabus      string `json:"syllabus"`      // 教学大纲/主修科目自由文本
	Qualification string `json:"qualification"` // 学历自由文本
	Nationality   string `json:"nationality"`
	LearningStyle string `json:"learningStyle"` // 可选，如 visual / auditory / kinesthetic
}

// ProfileUpdate 档案逐字段更新请求，nil 字段保持原值
// swagger:model ProfileUpdate
type ProfileUpdate struct {
	Name          *string `json:"name"`
	Institution   *string `json:"institution"`
	Syllabus      *string `json:"syllabus"`
	Qualification *string `json:"qualification"`
	Nationality   *string `json:"nationality"`
	LearningStyle *string `json:"learningStyle"`
}

// Apply 将非 nil 字段写入目标档案
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Institution != nil {
		p.Institution = *u.Institution
	}
	if u.Syllabus != nil {
		p.Syllabus = *u.Syllabus
	}
	if u.Qualification != nil {
		p.Qualification = *u.Qualification
	}
	if u.Nationality != nil {
		p.Nationality = *u.Nationality
	}
	if u.LearningStyle != nil {
		p.LearningStyle = *u.LearningStyle
	}
}
