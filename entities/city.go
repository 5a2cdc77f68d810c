package entities

type City struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	City      string `gorm:"column:city;not null" json:"city"`
	StateCode string `gorm:"column:state_code;not null;index" json:"state_code"`
}

func (City) TableName() string { return "cities" }
