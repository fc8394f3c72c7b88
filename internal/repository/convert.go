package repository

import (
	"github.com/syaifulazham/booth-visit/internal/domain"
	"github.com/syaifulazham/booth-visit/internal/repository/dao"
)

func boothDAOToDomain(b dao.Booth) domain.Booth {
	booth := domain.Booth{
		ID:               b.ID,
		BoothNumber:      b.BoothNumber,
		BoothName:        b.BoothName,
		Ministry:         b.Ministry,
		Agency:           b.Agency,
		AbbreviationName: b.AbbreviationName,
		Hashcode:         b.Hashcode,
		QRCodeGenerated:  b.QRCodeGenerated,
		PICName:          b.PICName,
		PICPhone:         b.PICPhone,
		PICEmail:         b.PICEmail,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}

	for _, v := range b.Visits {
		booth.Visits = append(booth.Visits, visitDAOToDomain(v))
	}

	return booth
}

func boothDomainToDAO(b domain.Booth) dao.Booth {
	return dao.Booth{
		ID:               b.ID,
		BoothNumber:      b.BoothNumber,
		BoothName:        b.BoothName,
		Ministry:         b.Ministry,
		Agency:           b.Agency,
		AbbreviationName: b.AbbreviationName,
		Hashcode:         b.Hashcode,
		QRCodeGenerated:  b.QRCodeGenerated,
		PICName:          b.PICName,
		PICPhone:         b.PICPhone,
		PICEmail:         b.PICEmail,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func visitorDAOToDomain(v dao.Visitor) domain.Visitor {
	visitor := domain.Visitor{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		Gender:      v.Gender,
		State:       v.State,
		Age:         v.Age,
		VisitorType: v.VisitorType,
		Sektor:      v.Sektor,
		CookieID:    v.CookieID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}

	for _, visit := range v.Visits {
		visitor.Visits = append(visitor.Visits, visitDAOToDomain(visit))
	}

	return visitor
}

func visitorDomainToDAO(v domain.Visitor) dao.Visitor {
	return dao.Visitor{
		ID:          v.ID,
		Name:        v.Name,
		Email:       v.Email,
		Phone:       v.Phone,
		Gender:      v.Gender,
		State:       v.State,
		Age:         v.Age,
		VisitorType: v.VisitorType,
		Sektor:      v.Sektor,
		CookieID:    v.CookieID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func visitDAOToDomain(v dao.Visit) domain.Visit {
	visit := domain.Visit{
		ID:        v.ID,
		VisitorID: v.VisitorID,
		BoothID:   v.BoothID,
		VisitedAt: v.VisitedAt,
		IPAddress: v.IPAddress,
		UserAgent: v.UserAgent,
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}

	if v.Booth.ID != 0 {
		booth := boothDAOToDomain(v.Booth)
		visit.Booth = &booth
	}
	if v.Visitor.ID != 0 {
		visitor := visitorDAOToDomain(v.Visitor)
		visit.Visitor = &visitor
	}

	return visit
}

func visitDomainToDAO(v domain.Visit) dao.Visit {
	return dao.Visit{
		ID:        v.ID,
		VisitorID: v.VisitorID,
		BoothID:   v.BoothID,
		VisitedAt: v.VisitedAt,
		IPAddress: v.IPAddress,
		UserAgent: v.UserAgent,
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func adminDAOToDomain(a dao.Admin) domain.Admin {
	return domain.Admin{
		ID:        a.ID,
		Email:     a.Email,
		Password:  a.Password,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Name:        e.Name,
		Slogan:      e.Slogan,
		Venue:       e.Venue,
		DateStart:   e.DateStart,
		DateEnd:     e.DateEnd,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
