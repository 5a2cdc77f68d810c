package entities

type Review struct {
	ReviewID      int     `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	RestName      string  `gorm:"column:rest_name;type:varchar(255);not null" json:"rest_name"`
	ORating       float64 `gorm:"column:o_rating;type:numeric(3,1);not null" json:"o_rating"`
	Price         int     `gorm:"column:price;not null" json:"price"`
	Taste         float64 `gorm:"column:taste;type:numeric(3,1);not null" json:"taste"`
	Experience    float64 `gorm:"column:experience;type:numeric(3,1);not null" json:"experience"`
	Description   string  `gorm:"column:description;type:varchar(1000)" json:"description"`
	City          string  `gorm:"column:city;type:varchar(100);not null" json:"city"`
	StateCode     string  `gorm:"column:state_code;type:varchar(2);not null" json:"state_code"`
	SophSubmitted *bool   `gorm:"column:soph_submitted" json:"soph_submitted"`
	UserEncrypted string  `gorm:"column:user_encrypted;type:varchar(64);not null;index" json:"user_encrypted"`
}

func (Review) TableName() string { return "reviews" }

type RestaurantType struct {
	RestTypeID int    `gorm:"column:rest_type_id;primaryKey;autoIncrement" json:"rest_type_id"`
	RestType   string `gorm:"column:rest_type;not null" json:"rest_type"`
}

func (RestaurantType) TableName() string { return "rest_types" }

// RestTypeReviewRef is the junction table between rest_types and reviews.
type RestTypeReviewRef struct {
	RestTypeID int `gorm:"column:rest_type_id;primaryKey" json:"rest_type_id"`
	ReviewID   int `gorm:"column:review_id;primaryKey" json:"review_id"`

	RestaurantType *RestaurantType `gorm:"foreignKey:RestTypeID;constraint:OnDelete:CASCADE" json:"-"`
	Review         *Review         `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RestTypeReviewRef) TableName() string { return "rest_type_review_ref" }
