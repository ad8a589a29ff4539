// Copyright (c) 2026 Al Mohtaref Landscaping <info@almohtaref-sa.com>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: the core
// service catalog, page banners, and the homepage carousel. It is a no-op
// when services already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM services").Scan(&count); err != nil {
		return fmt.Errorf("seed check services: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	services := []struct {
		title, titleAr, desc, descAr, icon string
		features, featuresAr               string
		featured                           bool
	}{
		{
			"Garden Design and Landscaping", "تصميم وتنسيق الحدائق",
			"Creative designs that blend natural beauty with comfort",
			"إبداع تصاميم مميزة تدمج بين الجمال الطبيعي والراحة",
			"tree-pine",
			`["Custom designs","3D visualization","Expert consultation"]`,
			`["تصاميم مخصصة","تصور ثلاثي الأبعاد","استشارة متخصصة"]`,
			true,
		},
		{
			"Natural Grass Supply and Installation", "توريد وتركيب الثيل الطبيعي",
			"Natural grass that gives the place a touch of freshness and vitality",
			"عشب طبيعي يمنح المكان لمسة انتعاش وحيوية",
			"leaf",
			`["Premium quality grass","Professional installation","Maintenance guidance"]`,
			`["عشب عالي الجودة","تركيب احترافي","إرشادات الصيانة"]`,
			true,
		},
		{
			"Irrigation Network Design and Installation", "تصميم وتركيب شبكات الري",
			"Smart and water-saving systems to preserve plants",
			"أنظمة ذكية وموفرة للمياه للحفاظ على النباتات",
			"droplets",
			`["Smart irrigation","Water saving","Timer controlled"]`,
			`["ري ذكي","توفير المياه","تحكم بالوقت"]`,
			false,
		},
		{
			"Waterfalls and Fountains Design", "تصميم وتركيب الشلالات والنوافير",
			"A luxurious touch that adds to the attractiveness of the space",
			"لمسة فاخرة تزيد من جاذبية المساحة",
			"waves",
			`["Custom designs","LED lighting","Low maintenance"]`,
			`["تصاميم مخصصة","إضاءة LED","صيانة منخفضة"]`,
			true,
		},
	}
	for _, s := range services {
		_, err := db.Exec(`
			INSERT INTO services (title, title_ar, description, description_ar,
			                      icon, features, features_ar, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, s.title, s.titleAr, s.desc, s.descAr, s.icon, s.features, s.featuresAr, s.featured)
		if err != nil {
			return fmt.Errorf("seed insert service: %w", err)
		}
	}

	banners := map[string]string{
		"home":    "https://images.pexels.com/photos/1105019/pexels-photo-1105019.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
		"about":   "https://images.pexels.com/photos/1301856/pexels-photo-1301856.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
		"contact": "https://images.pexels.com/photos/417074/pexels-photo-417074.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
	}
	for page, image := range banners {
		if _, err := db.Exec(`
			INSERT INTO banners (page, image) VALUES ($1, $2)
			ON CONFLICT (page) DO NOTHING
		`, page, image); err != nil {
			return fmt.Errorf("seed insert banner: %w", err)
		}
	}

	slides := []struct {
		title, titleAr, subtitle, subtitleAr, image string
		order                                       int
	}{
		{
			"Luxury Garden Design", "تصميم حدائق فاخرة",
			"Palace gardens with wooden pergolas and waterfalls",
			"حدائق قصور مع برجولات خشبية وشلالات",
			"https://images.pexels.com/photos/1105019/pexels-photo-1105019.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
			0,
		},
		{
			"Stunning Waterfalls and Fountains", "شلالات ونوافير مبهرة",
			"Water features that add luxury and tranquility",
			"عناصر مائية تضيف الفخامة والهدوء",
			"https://images.pexels.com/photos/417074/pexels-photo-417074.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
			1,
		},
		{
			"Modern Smart Technologies", "تقنيات ذكية حديثة",
			"Smart irrigation systems and modern glass rooms",
			"أنظمة ري ذكية وغرف زجاجية عصرية",
			"https://images.pexels.com/photos/1029599/pexels-photo-1029599.jpeg?auto=compress&cs=tinysrgb&w=1920&h=1080&fit=crop",
			2,
		},
	}
	for _, s := range slides {
		if _, err := db.Exec(`
			INSERT INTO home_slides (title, title_ar, subtitle, subtitle_ar, image, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, s.title, s.titleAr, s.subtitle, s.subtitleAr, s.image, s.order); err != nil {
			return fmt.Errorf("seed insert home slide: %w", err)
		}
	}

	slog.Info("database seeded with development data",
		"services", len(services),
		"banners", len(banners),
		"home_slides", len(slides),
	)
	return nil
}
