package models

type UserRole string

const (
	UserRoleCanBo       UserRole = "can_bo"
	UserRoleDoiPho      UserRole = "doi_pho"
	UserRoleDoiTruong   UserRole = "doi_truong"
	UserRolePhoPhong    UserRole = "pho_phong"
	UserRoleTruongPhong UserRole = "truong_phong"
)

// roleOrder fixes seniority, rank = index + 1
var roleOrder = []UserRole{
	UserRoleCanBo,
	UserRoleDoiPho,
	UserRoleDoiTruong,
	UserRolePhoPhong,
	UserRoleTruongPhong,
}

var roleHumanName = map[UserRole]string{
	UserRoleCanBo:       "Cán bộ",
	UserRoleDoiPho:      "Đội phó",
	UserRoleDoiTruong:   "Đội trưởng",
	UserRolePhoPhong:    "Phó phòng",
	UserRoleTruongPhong: "Trưởng phòng",
}

// Rank returns the seniority position in [1,5], 0 for an unknown role.
func (r UserRole) Rank() int {
	for i, role := range roleOrder {
		if role == r {
			return i + 1
		}
	}
	return 0
}

func (r UserRole) IsValid() bool {
	return r.Rank() > 0
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func RoleList() []UserRole {
	list := make([]UserRole, len(roleOrder))
	copy(list, roleOrder)
	return list
}
